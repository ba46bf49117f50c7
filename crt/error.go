package crt

// KeyNotFound - Returned by lookups and deletes when the key has no live entry
type KeyNotFound struct {
	msg string
}

// Error - Message for a missing key, the default one unless msg is set
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found in table"
	}
	return E.msg
}

// TableOverflow - Returned by an insert that found neither a free slot nor a tombstone to reuse
type TableOverflow struct {
	msg string
}

// Error - Message for a table with every slot occupied
func (E TableOverflow) Error() string {
	if E.msg == "" {
		return "table overflow"
	}
	return E.msg
}

// ProbingAlgorithm - Returned when a hash algorithm gives a home slot outside the table
type ProbingAlgorithm struct {
	msg string
}

// Error - Message for an unusable hash algorithm result
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "home slot outside table range"
	}
	return P.msg
}
