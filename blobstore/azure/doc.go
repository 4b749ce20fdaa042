// Package azure provides a blobstore.Store implementation for Azure Blob Storage.
//
// The store is usually built from a storage account connection string:
//
//	store, err := azure.New("DefaultEndpointsProtocol=https;AccountName=...;AccountKey=...;EndpointSuffix=core.windows.net")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc := storageclient.New(store)
//
// Uploads use block blobs and overwrite existing blobs.
package azure
