// Package extract compiles a category selection into a scan program and
// runs the single-pass extraction loop: at each input position the longest
// match among the selected alternatives wins, ties go to the earliest
// registered alternative, and the cursor advances past each emitted match so
// results are ordered and non-overlapping.
package extract
