package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContract marks pipeline-construction bugs: a stage received input that
// violates an upstream stage's output contract, or the pipeline was built
// from unusable configuration. These abort the run; they never describe
// data-quality problems, which are counted and filtered instead.
var ErrContract = errors.New("pipeline contract error")

func contractErr(stage, message string) error {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return fmt.Errorf("%w: %s", ErrContract, message)
	}
	return fmt.Errorf("%w: %s: %s", ErrContract, stage, message)
}
