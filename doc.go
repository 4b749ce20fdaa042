// Package storageclient provides one facade for file operations against the
// local disk or a remote blob store.
//
// Every operation takes a FileType that selects the target. Disk paths are
// used as-is; Blob paths are "container/key", where the first segment names
// the container and the rest names the object.
//
// # Quick Start
//
//	ctx := context.Background()
//	sc, err := storageclient.Open(ctx, os.Getenv("STORAGE_CONNECTION_STRING"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, _ := sc.Upload(ctx, storageclient.Blob, "reports/2024/q1.pdf", f, nil)
//	resp, _ := sc.Fetch(ctx, storageclient.Blob, "reports/2024/q1.pdf", nil)
//	fmt.Println(resp.Status, resp.ContentType, len(resp.RawData))
//
// A Client built with New(nil) serves Disk operations only.
//
// # Outcomes and Errors
//
// Expected conditions such as a missing file, container or object are
// reported through the Status and Message fields of the response, not as
// errors. Errors are reserved for:
//
//   - ErrInvalidPath: empty or whitespace path, or a Blob path without a key
//   - ErrRemoteNotConfigured: Blob operation on a disk-only client
//   - *BackendError (errors.Is ErrBackendUnavailable): the disk or remote
//     store failed for a reason other than not-found
//
// Upload is the exception: backend failures are logged and reported as false.
//
// # Connection Strings
//
// Open accepts Azure storage connection strings and s3://, minio:// and
// memory:// URLs. See package blobstore/connstr.
//
// # Notifications
//
// Fetch, Delete and Upload accept an optional callback which is invoked
// synchronously, on the calling goroutine, after the operation succeeded.
package storageclient
