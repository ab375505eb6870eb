package types

// Pod is one leader together with the candidates assigned to it.
type Pod struct {
	// Index is the 1-based position of the pod in leader order.
	Index int `json:"index"`

	// Leader is the pod lead.
	Leader Member `json:"leader"`

	// Members are the candidates assigned to the pod, in shuffled order.
	Members []Member `json:"members"`

	// Size always equals len(Members).
	Size int `json:"size"`
}

// Distribution is the successful result of a partition run.
//
// Pods are ordered like the leaders passed to the strategy. TotalMembers is the
// number of candidates distributed and PodLeadCount the number of pods.
type Distribution struct {
	Pods         []Pod `json:"pods"`
	TotalMembers int   `json:"totalMembers"`
	PodLeadCount int   `json:"podLeadCount"`
}

// Sizes returns the pod sizes in pod order.
func (d Distribution) Sizes() []int {
	sizes := make([]int, len(d.Pods))
	for i, p := range d.Pods {
		sizes[i] = p.Size
	}

	return sizes
}

// EmptyPods returns the number of pods without any members.
//
// Empty pods are legal when there are fewer candidates than leaders.
func (d Distribution) EmptyPods() int {
	n := 0
	for _, p := range d.Pods {
		if p.Size == 0 {
			n++
		}
	}

	return n
}
