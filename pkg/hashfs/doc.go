// Package hashfs integrates a content-addressable file storage engine into a
// web application. It validates storage configuration before anything is
// initialized, composes URLs for stored content out of host, path prefix and
// relative path, and exposes the engine through an enumerated client
// interface instead of an open-ended proxy.
//
// The engine itself stays external behind the Storage interface and is bound
// in through a StorageOpener, so the package never touches hashing, directory
// sharding or file placement.
package hashfs
