// Package convert splits an aggregate export into a directory of per-site
// files and combines such a directory back into an export.
//
// # Split Form
//
// [Converter.Split] writes, for every site of a [userdata.UserData]:
//
//   - <name>.json with the site metadata (compiledCss, id, libs, options and
//     name when set), tab-indented
//   - <name>.js with the raw js body, only when the body is non-empty
//   - <name>.css with the raw css body, only when the body is non-empty
//
// plus a single userSettings.json holding the top-level libs and settings.
//
// <name> is the site id with the characters * : \ / replaced by "_" (see
// [FileName]). With [Options.Prefix] set, each name is prefixed with the
// zero-padded position of the site, so sorting the files by name gives back
// the original order:
//
//	000https___example.com__.json
//	000https___example.com__.css
//	001example.org.json
//	userSettings.json
//
// The pad width is at least three digits and grows with the number of sites
// (see [PrefixWidth]); string order and numeric order never diverge.
//
// # Combine
//
// [Converter.Combine] walks a directory tree, keeps every .json file whose
// top-level keys match a stripped site ([userdata.CheckShape]), sorts the
// matches by path, reattaches the sibling .js and .css bodies and joins the
// result with the root userSettings.json. Files of any other shape are
// skipped. Malformed JSON or a missing settings file aborts the run before
// anything is written.
//
// # Writes
//
// Every write is synchronous and checked. The first failing write aborts the
// run; files written before it stay on disk.
package convert
