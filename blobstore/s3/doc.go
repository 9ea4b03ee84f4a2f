// Package s3 provides a blobstore.Store backed by Amazon S3.
//
// Snapshots are uploaded through the AWS transfer manager, which switches to
// multipart uploads for large payloads, and read back with ranged GetObject
// requests.
//
// # Usage
//
//	client, err := s3.NewDefaultClient(ctx)
//	if err != nil {
//	    panic(err)
//	}
//	store := s3.NewStore(client, "my-bucket", "models/")
package s3
