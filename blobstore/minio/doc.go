// Package minio provides a blobstore.Store backed by MinIO or any
// S3-compatible object store.
//
// # Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	})
//	if err != nil {
//	    panic(err)
//	}
//	store := miniostore.NewStore(client, "models", "centrogo/")
package minio
