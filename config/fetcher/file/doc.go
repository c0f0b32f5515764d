// Package file reads and writes configuration documents on an afero filesystem.
//
// Fetcher reads a document once, when it is constructed, and serves copies of
// those bytes. Sink replaces a document atomically: the new content goes to a
// temporary file next to the target which is renamed over it only when writing
// succeeded, so readers never observe a half written document.
//
//	fs := afero.NewOsFs()
//
//	fetcher, err := file.NewFetcher(fs, "settings.yml")()
//	...
//	err = file.NewSink(fs, "settings.yml").Write(func(w io.Writer) error {
//		return loader.Save(root, w)
//	})
//
// Fetcher construction fails with ErrPathIsDirectory for directories and with
// an error matching fs.ErrNotExist for missing files.
package file
