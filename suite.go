package umbral

import (
	"go.dedis.ch/kyber/v3/suites"

	"github.com/dedis/student_19_umbral/lib"
)

// Suite is the cipher suite every key, capsule and fragment produced by
// this module lives on.
var Suite suites.Suite = lib.SuiTe
