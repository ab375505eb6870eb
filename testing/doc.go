// Package testing provides test utilities for the podbot library.
//
// It follows Go's convention of shipping test helpers in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: In-process NATS server for event publishing tests
//   - NewTestLogger / NewRecordingLogger: Loggers for test output and assertions
//   - FakePlatform: In-memory guild implementing types.Platform and types.Authorizer
//
// Example usage:
//
//	import (
//	    "testing"
//	    podtest "github.com/Willfwalker/Discord-Bot/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    p := podtest.NewFakePlatform("guild", members)
//	    lounge := p.AddVoiceChannel("Lounge", "")
//	    p.Roster.Connect(lounge.ID, "u1", "u2")
//	}
package testing
