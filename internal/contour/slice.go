package contour

// span splits [0, n) into workers contiguous, gap-free pieces and returns
// the half-open range owned by tid. Pieces tile the range exactly and their
// sizes differ by at most one element.
func span(tid, workers, n int) (start, end int) {
	start = tid * n / workers
	end = (tid + 1) * n / workers
	if end > n {
		end = n
	}
	return start, end
}
