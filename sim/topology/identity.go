package topology

// IdentityRegistry issues the monotonically increasing cluster, host, and
// core sequence numbers consumed during topology construction. Sequences are
// consumed, never reused: a Builder sharing one registry across calls
// continues each sequence where the previous build ended, which keeps host
// and core identity unique across every topology built within one experiment
// run. A fresh registry starts every sequence at zero.
//
// Thread-safety: NOT thread-safe. One registry belongs to one expansion run;
// interleaved use from concurrent runs would corrupt identity assignment.
type IdentityRegistry struct {
	clusterSeq int
	hostSeq    int64
	coreSeq    int
}

// NewIdentityRegistry creates a registry with all sequences at zero.
func NewIdentityRegistry() *IdentityRegistry {
	return &IdentityRegistry{}
}

func (r *IdentityRegistry) nextCluster() int {
	v := r.clusterSeq
	r.clusterSeq++
	return v
}

func (r *IdentityRegistry) nextHost() int64 {
	v := r.hostSeq
	r.hostSeq++
	return v
}

func (r *IdentityRegistry) nextCore() int {
	v := r.coreSeq
	r.coreSeq++
	return v
}
