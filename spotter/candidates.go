package spotter

// candidateSpans are the discrete span lengths Simple chooses from,
// listed longest-first (spec.md C6). Every candidate that fits is scored
// and the cheapest safe one wins; the order only decides ties, which go
// to the longer span.
var candidateSpans = []float64{450, 420, 380, 340, 300}

// stepBackMeters is the increment Simple retreats a candidate endpoint by
// when it lands in a forbidden zone or fails clearance or safety.
const stepBackMeters = 10.0

// maxStepBacks bounds how many times Simple will retreat before giving
// up on a station, keeping the algorithm's worst case O(1) per station
// rather than an unbounded search.
const maxStepBacks = 20
