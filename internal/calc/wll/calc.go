package wll

// Types returns the sling-type catalog in display order.
func Types() []SlingType {
	out := make([]SlingType, len(slingTypes))
	copy(out, slingTypes)
	return out
}

func byID(slingTypeID string) *SlingType {
	for i := range slingTypes {
		if slingTypes[i].ID == slingTypeID {
			return &slingTypes[i]
		}
	}
	return nil
}

// Lookup returns the tabulated WLL in tonnes for an exact (type, size,
// configuration) key. A near-miss size must not resolve to a neighbouring
// entry, so any unknown key reports a miss.
func Lookup(slingTypeID, size, configuration string) (float64, bool) {
	t := byID(slingTypeID)
	if t == nil {
		return 0, false
	}
	row, ok := t.WLL[size]
	if !ok {
		return 0, false
	}
	v, ok := row[configuration]
	if !ok {
		return 0, false
	}
	return v, true
}

// AvailableSizes returns the populated sizes for a type, in table order.
func AvailableSizes(slingTypeID string) []string {
	t := byID(slingTypeID)
	if t == nil {
		return []string{}
	}
	out := make([]string, len(t.Sizes))
	copy(out, t.Sizes)
	return out
}

// AvailableConfigurations returns the fixed configuration list for a known
// type, empty for an unknown one.
func AvailableConfigurations(slingTypeID string) []string {
	if byID(slingTypeID) == nil {
		return []string{}
	}
	out := make([]string, len(Configurations))
	copy(out, Configurations)
	return out
}
