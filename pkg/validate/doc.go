// Package validate statically checks a graph document before it is ever
// scheduled: every node references a registered kind, every edge connects
// declared ports with compatible parameter kinds, required inputs are
// satisfied, and the graph contains no cycle. It reports every problem it
// finds rather than stopping at the first.
package validate
