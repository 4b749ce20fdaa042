// Package fs provides the filesystem abstraction behind disk operations.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test wrapper that injects open, write, close and remove failures
//
// Production code uses fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to reach error paths that file permissions cannot reliably
// produce, for example when running as root:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("locked.txt", fs.Fault{FailOnRemove: true, FailAfterBytes: -1})
//
// Operations take no context.Context. Local syscalls are not interruptible.
package fs
