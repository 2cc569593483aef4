// Package builder defines method tags used to prefix errors with the
// operation name for context.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//-----------------------------------------------------------------------------

const (
	// MethodPush is the canonical name for Builder.Push.
	MethodPush = "Push"
	// MethodBuild is the canonical name for Builder.Build.
	MethodBuild = "Build"
)

// panicNilRelease is raised by WithRelease(nil).
const panicNilRelease = "builder: WithRelease(nil)"
