package lib

import "go.dedis.ch/kyber/v3/suites"

// SuiTe is the suite used for every capsule, fragment and key in this
// package. Values produced under different suites are never compatible.
var SuiTe = suites.MustFind("Ed25519")
