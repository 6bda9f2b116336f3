package policy

// DispatchKind identifies the dispatch flavor a policy is driving.
type DispatchKind int

const (
	DispatchFor    DispatchKind = 0 // element-wise
	DispatchReduce DispatchKind = 1 // reduction, one trailing accumulator
	DispatchScan   DispatchKind = 2 // scan, accumulator plus final-pass flag
)

var dispatchNames = map[DispatchKind]string{
	DispatchFor:    "parallel_for",
	DispatchReduce: "parallel_reduce",
	DispatchScan:   "parallel_scan",
}

func (k DispatchKind) String() string {
	return dispatchNames[k]
}

// ExtraParams is the number of policy-owned workunit parameters beyond the
// index/team parameters.
func (k DispatchKind) ExtraParams() int {
	switch k {
	case DispatchReduce:
		return 1
	case DispatchScan:
		return 2
	}
	return 0
}
