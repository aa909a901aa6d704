package traverse

// Rotate visits n logical indices, starting at start and advancing by one,
// wrapping back to 0 when the index reaches n. f is called once per index.
// Rotate returns as soon as f returns true; the remaining indices are not
// visited.
//
// For 0 <= start < n the visiting order is:
//
//	start, start+1, ..., n-1, 0, 1, ..., start-1
//
// start is not validated. If n <= 0 or f is nil, Rotate does nothing.
func Rotate(start, n int, f func(i int) (stop bool)) {
	if n <= 0 || f == nil {
		return
	}

	i := start
	for step := 0; step < n; step++ {
		if f(i) {
			return
		}

		i++
		if i == n {
			i = 0
		}
	}
}
