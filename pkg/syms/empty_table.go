package syms

type emptyTable struct{}

func (*emptyTable) Lookup(string) (uint64, bool) { return 0, false }
func (*emptyTable) Size() int                    { return 0 }
