// Package runid mints the opaque run_tag identifier attached to every
// CSV row the driver emits.
//
// Grounded in _examples/dekarrin-tunaq (server/token.go mints opaque
// session identifiers with github.com/google/uuid) and
// _examples/theRebelliousNerd-codenerd, which uses the same library for
// request identifiers.
package runid

import "github.com/google/uuid"

// New mints a fresh V4 run tag. Called once per job, inside the job when
// it builds its CSV row, so repeated invocations of the same config never
// collide on grammar+learner+replicate identity.
func New() string {
	return uuid.NewString()
}
