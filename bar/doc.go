// Package bar renders a status bar through the draw package: a row
// of widgets laid out left to right in one dock window per screen,
// with leftover width shared among greedy widgets.
package bar
