// Package keypad computes the shortest keystroke sequences for typing a code
// through a chain of robot-operated keypads.
//
// Version: 1.0.0
//
// A code is typed on a numeric keypad by a robot. That robot is steered from
// a directional keypad, which may itself be operated by another robot, and so
// on, until a human presses the topmost directional keypad. Every pointer
// rests on the Activate button between actions and no pointer may ever touch
// a keypad's gap cell.
//
// # Cost evaluation
//
// The number of presses needed for one transition at the bottom of the chain
// depends only on the two buttons and on how many operators sit above it.
// CostTable memoises that value for every (depth, from, to) and is shared
// freely between codes, chains and goroutines. All tied minimal paths between
// two buttons are considered, since ties at one level cost differently once
// they are typed one level up.
//
// # Witness sequences
//
// RobotChain.ButtonPresses enumerates the minimal sequences themselves. The
// enumeration reuses the cost table to discard non-minimal paths at every
// level, and Replay runs a sequence back through the chain for verification.
package keypad

// Version is the current version of the keypad package.
const Version = "1.0.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
}

// GetVersionInfo returns detailed version information. Build metadata is
// filled in by the caller, usually from linker flags.
func GetVersionInfo(gitCommit, buildDate string) VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}
}
