package observe

// Averages holds production-phase means of an observable series.
type Averages struct {
	R        float64
	Rg       float64
	Contacts float64
	// Used is the number of records averaged after burn-in removal.
	Used int
}

// Mean averages a record series after discarding the leading burnFrac
// fraction as equilibration. burnFrac is clamped to [0, 1); an empty
// series (or one fully consumed by burn-in) yields a zero Averages.
// Complexity: O(len(records)).
func Mean(records []Record, burnFrac float64) Averages {
	if burnFrac < 0 {
		burnFrac = 0
	}
	if burnFrac >= 1 {
		burnFrac = 0.999999
	}
	burn := int(burnFrac * float64(len(records)))
	prod := records[burn:]
	if len(prod) == 0 {
		return Averages{}
	}

	var a Averages
	for _, r := range prod {
		a.R += r.R
		a.Rg += r.Rg
		a.Contacts += float64(r.Contacts)
	}
	n := float64(len(prod))
	a.R /= n
	a.Rg /= n
	a.Contacts /= n
	a.Used = len(prod)

	return a
}
