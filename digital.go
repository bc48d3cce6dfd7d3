// Package digital provides compact numeric approximation utilities built
// around a precomputed sine lookup table and a handful of bit-level tricks.
//
// The sub-packages are organized as follows:
//   - trig: sine-table trigonometry and polynomial inverse trigonometry, in
//     radians, degrees, and turns, with float32 and float64 variants;
//   - mathx: bit-level approximations (fast inverse square root, cube root,
//     Barron spline, integer square root, Stieltjes factorial/gamma) and
//     general math helpers (interpolation, angle wrapping, rounding);
//   - arrays: generic slice and 2D-grid helpers;
//   - sampling: deterministic and secure pseudo-random byte sources;
//   - bignum: arbitrary-precision reference math used by the test suites.
package digital
