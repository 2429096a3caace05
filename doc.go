// Package fixedstr provides sized strings: immutable sequences of exactly N
// code units whose length is fixed when the value is built.
//
// A [Sized] value stores its units followed by one zero terminator unit that
// is never part of the logical content. Values are created by one of four
// construction protocols:
//
//   - [Of]: the individual units, N is the argument count
//   - [FromLiteral] / [Lit]: a terminated literal array, or a Go string literal
//   - [FromSeq]: an iterator range yielding exactly N elements
//   - [FromContainer]: a whole container of exactly N elements
//
// The unit type is a type parameter, so narrow, wide and Unicode strings are
// instantiations of one design: [String], [WString], [U8String],
// [U16String] and [U32String].
//
// # Contracts
//
// Unchecked operations ([Sized.Index], [Sized.Front], [Sized.Back], the
// length preconditions of the constructors) treat a violation as a caller
// bug. Violations are reported to the handler installed with
// [SetViolationHandler]; building with -tags fixedstr_debug installs a
// panicking handler by default.
//
// [Sized.At] is the one bounds-checked accessor. In the default build it
// returns an [*OutOfRangeError] with the message "fixedstr::Sized::at";
// building with -tags fixedstr_unchecked removes the check for the whole
// program. [CheckedAt] reports which build is linked.
//
// # Views
//
// [Sized.View] returns a read-only [View] of the logical units. Equality,
// ordering, hashing and output are all defined on the view.
//
// # Concatenation
//
// [Concat], [Append], [Prepend], [AppendLiteral], [PrependLiteral] and
// [Join] never touch their operands and always return a new value sized for
// the combined content.
package fixedstr
