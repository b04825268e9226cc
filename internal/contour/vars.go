package contour

var (
	Debug = false // set to true for progress and timing output
)
