package runner

// Input is one frame of player intent. The game polls devices into it; tests
// build it by hand.
type Input struct {
	Move float32 // -1 back .. 1 forward
	Turn float32 // -1 left .. 1 right

	Jump bool // pressed this frame

	BuildDown bool // pressed this frame
	BuildHeld bool
	BuildUp   bool // released this frame
}
