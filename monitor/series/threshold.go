package series

import (
	"fmt"
)

// Threshold bounds the window mean of a series. Nil bounds are not checked.
type Threshold struct {
	Lower *float64
	Upper *float64
}

// Breach describes a window mean outside its threshold.
type Breach struct {
	Snapshot
	Bound float64
	Above bool
}

func (b Breach) String() string {
	if b.Above {
		return fmt.Sprintf("%s#%d: window mean %.4g above %.4g", b.Name, b.Seq, b.Mean, b.Bound)
	}
	return fmt.Sprintf("%s#%d: window mean %.4g below %.4g", b.Name, b.Seq, b.Mean, b.Bound)
}

func (t *Threshold) Check(snap Snapshot) (Breach, bool) {
	if t == nil {
		return Breach{}, false
	}
	if t.Upper != nil && snap.Mean > *t.Upper {
		return Breach{Snapshot: snap, Bound: *t.Upper, Above: true}, true
	}
	if t.Lower != nil && snap.Mean < *t.Lower {
		return Breach{Snapshot: snap, Bound: *t.Lower}, true
	}
	return Breach{}, false
}
