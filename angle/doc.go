// Package angle converts between packed DD.MMSS angle text and decimal
// degrees, and provides the small direction helpers every other package
// in surveyor relies on.
//
// 🚀 What is DD.MMSS?
//
//	Field books and total stations record angles as a single number whose
//	integer part is degrees and whose fraction packs minutes and seconds:
//
//	  "123.4530"  →  123° 45' 30"  →  123.758333…°
//	  "-5.0015"   →  -(5° 00' 15") →  -5.004166…°
//
//	Only the first four fractional digits are significant; further digits
//	are ignored. A shorter fraction ("12.5") is read as decimal degrees.
//
// ✨ Key features:
//   - Decode / Encode with a lossless round trip to the nearest second
//   - carry handling on encode (60" → 1', 60' → 1°), one leading sign
//   - direction helpers: Azimuth from coordinate deltas, Back azimuth,
//     Normalize into [0,360), NormalizeSigned into (−180,180]
//
// ⚙️ Usage:
//
//	deg, err := angle.Decode("123.4530") // 123.758333…
//	txt := angle.Encode(deg)             // "123.4530"
//
// All functions are pure and safe for concurrent use.
package angle
