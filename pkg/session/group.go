package session

import "github.com/matzehuels/dbgview/pkg/render"

// StepKind distinguishes single frames from folded loops.
type StepKind int

const (
	// StepSingle is one frame.
	StepSingle StepKind = iota
	// StepLoop is a run of repeated blocks of frames.
	StepLoop
)

// Step is one entry of a grouped replay.
type Step struct {
	Kind StepKind
	File string
	Line int

	// Index is the position of the step's first frame in the session.
	Index int
	// Frame is set for single steps.
	Frame *render.Frame
	// Iterations is set for loop steps.
	Iterations []Iteration
}

// Iteration is one repetition of a loop step.
type Iteration struct {
	// Start and End delimit the iteration's frames, [Start, End).
	Start, End int
	// Frame is the iteration's first frame, emitted at the loop's location.
	Frame *render.Frame
	// Steps groups the iteration's remaining frames.
	Steps []Step
}

// Group folds repeated blocks of frames into loop steps.
//
// A loop starts at a frame whose location recurs later such that the frames
// in between repeat with the same sequence of locations at least twice in a
// row. Each repetition becomes an iteration; the frames of an iteration after
// its first are grouped recursively. Every other frame is a single step.
func Group(frames []render.Frame) []Step {
	return group(frames, 0)
}

func group(frames []render.Frame, offset int) []Step {
	var steps []Step
	for i := 0; i < len(frames); {
		length, count := detectLoop(frames, i)
		if count == 0 {
			steps = append(steps, Step{
				Kind:  StepSingle,
				File:  frames[i].File,
				Line:  frames[i].Line,
				Index: offset + i,
				Frame: &frames[i],
			})
			i++
			continue
		}

		loop := Step{Kind: StepLoop, File: frames[i].File, Line: frames[i].Line, Index: offset + i}
		for it := range count {
			start := i + it*length
			end := start + length
			iter := Iteration{Start: offset + start, End: offset + end, Frame: &frames[start]}
			if length > 1 {
				iter.Steps = group(frames[start+1:end], offset+start+1)
			}
			loop.Iterations = append(loop.Iterations, iter)
		}
		steps = append(steps, loop)
		i += length * count
	}
	return steps
}

func sameLocation(a, b *render.Frame) bool {
	return a.File == b.File && a.Line == b.Line
}

func sameBlock(frames []render.Frame, a, b, length int) bool {
	if b+length > len(frames) {
		return false
	}
	for k := range length {
		if !sameLocation(&frames[a+k], &frames[b+k]) {
			return false
		}
	}
	return true
}

// detectLoop returns the block length and repetition count of the loop
// starting at start, or a zero count when there is none.
func detectLoop(frames []render.Frame, start int) (length, count int) {
	for next := start + 1; next < len(frames); next++ {
		if !sameLocation(&frames[start], &frames[next]) {
			continue
		}
		length = next - start
		if !sameBlock(frames, start, next, length) {
			continue
		}
		count = 2
		for sameBlock(frames, start, start+count*length, length) {
			count++
		}
		return length, count
	}
	return 0, 0
}
