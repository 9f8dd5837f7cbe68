// Package treasure defines the immutable Treasure value object and a
// deterministic generator used to stock maze hollows.
//
// What:
//
//   - Treasure carries an ID, a positive Weight, a positive Value,
//     and exposes the derived value-to-weight Ratio.
//   - Generator produces reproducible pseudo-random treasures: the same
//     seed and ranges always yield the same stream, so solver output and
//     test fixtures are stable across runs and platforms.
//
// Complexity:
//
//   - New, Ratio:            O(1).
//   - Generate, GenerateN:   O(1) per treasure.
//
// Options:
//
//   - WithSeed(s)            deterministic RNG seed; 0 selects a fixed default.
//   - WithWeightRange(lo,hi) inclusive bounds for generated weights.
//   - WithValueRange(lo,hi)  inclusive bounds for generated values.
//
// Errors:
//
//   - ErrNonPositiveWeight   weight ≤ 0 passed to New.
//   - ErrNonPositiveValue    value ≤ 0 passed to New.
//   - ErrBadRange            generation range empty or with non-positive bounds.
package treasure
