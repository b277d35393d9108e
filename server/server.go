// Package server is the web front end: it serves an upload form and returns
// the converted pattern as a text file download.
package server

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"

	"github.com/tmpim/knitter"
)

// Form field names.
const (
	fieldFile     = "file"
	fieldDualBed  = "duplicate_rows"
	fieldPadding  = "add_empty_rows"
	fieldIncrease = "empty_lines_increase"
	fieldDecrease = "empty_lines_decrease"
)

// Options configures the front end.
type Options struct {
	// Base supplies the palette, padding symbols and resize width. DualBed,
	// AddPadding and the padding counts come from each request.
	Base knitter.Options
	// MaxUpload caps the request body in bytes. Zero means 5 MiB.
	MaxUpload uint64
	// MaxPixels caps the decoded image size. Zero means
	// knitter.DefaultMaxPixels.
	MaxPixels int
}

type handler struct {
	base      knitter.Options
	maxPixels int
}

// New returns an echo instance serving the upload form on GET / and the
// conversion on POST /.
func New(opts Options) *echo.Echo {
	if opts.MaxUpload == 0 {
		opts.MaxUpload = 5 * humanize.MiByte
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(strconv.FormatUint(opts.MaxUpload, 10) + "B"))

	h := &handler{base: opts.Base, maxPixels: opts.MaxPixels}
	e.GET("/", h.form)
	e.POST("/", h.upload)

	return e
}

func (h *handler) form(c echo.Context) error {
	return c.HTML(http.StatusOK, uploadForm)
}

func (h *handler) upload(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data.")
	}

	fh, err := c.FormFile(fieldFile)
	if err != nil || fh.Filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest,
			"File type not allowed. Please upload PNG, GIF, or BMP files.")
	}

	mimeType := uploadType(fh.Filename)
	if mimeType == "" {
		return echo.NewHTTPError(http.StatusBadRequest,
			"File type not allowed. Please upload PNG, GIF, or BMP files.")
	}

	opts := h.base
	opts.DualBed = params.Has(fieldDualBed)
	opts.AddPadding = params.Has(fieldPadding)

	inc, err := countParam(params.Get(fieldIncrease))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Invalid number of empty lines for increase edits.")
	}
	dec, err := countParam(params.Get(fieldDecrease))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Invalid number of empty lines for decrease edits.")
	}
	opts.Padding.IncreaseCount = inc
	opts.Padding.DecreaseCount = dec

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, format, err := knitter.DecodeLimit(src, h.maxPixels)
	if errors.Is(err, knitter.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	} else if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Invalid file type. Please upload an image.")
	}

	pattern, err := knitter.ConvertImage(img, opts)
	if errors.Is(err, knitter.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	} else if err != nil {
		return err
	}

	name := downloadName(fh.Filename)
	body := pattern.Bytes()

	c.Logger().Infof("converted %s (%s, %s, %s) into %d rows, %s",
		name, format, mimeType, humanize.Bytes(uint64(fh.Size)), len(pattern),
		humanize.Bytes(uint64(len(body))))

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", body)
}

// countParam parses a spacer count form value. A missing value means 1.
func countParam(value string) (uint, error) {
	if value == "" {
		return 1, nil
	}

	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	if n > knitter.MaxSpacers {
		return 0, fmt.Errorf("count %d exceeds %d", n, knitter.MaxSpacers)
	}

	return uint(n), nil
}

func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}

	if err := c.String(code, msg); err != nil {
		c.Logger().Error(err)
	}
}
