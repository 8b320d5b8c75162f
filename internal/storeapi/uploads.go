package storeapi

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var uploadNode *snowflake.Node

func init() {
	uploadNode, _ = snowflake.NewNode(1)
}

// saveImageUpload stores an optional multipart "image" part under the
// images dir and returns its public reference. A request without an
// image part is not an error; the reference is empty and uploaded false.
func (a *API) saveImageUpload(c echo.Context) (ref string, uploaded bool, err error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", false, nil
	}
	name := uploadNode.Generate().String() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := saveMultipartFile(fh, filepath.Join(a.appConfig.GetImagesDir(), name)); err != nil {
		return "", false, err
	}
	return "/images/" + name, true, nil
}

// saveSpreadsheetUpload stores an uploaded workbook under the uploads
// dir and returns its path. saved is false when the part is missing.
func (a *API) saveSpreadsheetUpload(c echo.Context, field string) (path string, saved bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	name := uploadNode.Generate().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(a.appConfig.GetUploadsDir(), name)
	if err := saveMultipartFile(fh, dst); err != nil {
		return "", false, err
	}
	return dst, true, nil
}

func saveMultipartFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrap(err, "create upload dir")
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create upload target")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return errors.Wrap(err, "write upload")
	}
	return nil
}
