package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

func zipFiles(outputFilepath string, inputFilepaths ...string) (err error) {
	f, err := os.Create(outputFilepath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := zip.NewWriter(f)
	defer w.Close()
	for _, filepath := range inputFilepaths {
		err = addFileToZip(w, filepath)
		if err != nil {
			return fmt.Errorf("adding file %s: %w", filepath, err)
		}
	}
	return nil
}

func addFileToZip(w *zip.Writer, filepath string) (err error) {
	f, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Method = zip.Deflate
	ioWriter, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(ioWriter, f)
	return err
}
