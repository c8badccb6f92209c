package io

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Download
 ***************************************/

var gHttpClient = &http.Client{
	// release assets bounce through the github cdn
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return fmt.Errorf("stopped after %d redirects", len(via))
		}
		return nil
	},
}

// DownloadFile streams the url into dst, overwriting any previous partial
// download. The transient file is left in place on success so a later run
// with the same url can skip the transfer after checksum validation.
func DownloadFile(ctx context.Context, dst utils.Filename, url string) error {
	base.LogInfo(LogIO, "downloading %q", url)
	startedAt := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := gHttpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %q: unexpected status %q", url, resp.Status)
	}

	var written int64
	err = utils.UFS.CreateFile(dst, func(outp *os.File) error {
		var er error
		written, er = io.Copy(outp, newProgressReader(resp.Body, resp.ContentLength))
		return er
	})
	if err != nil {
		// do not leave a truncated archive behind for the next run to trust
		_ = utils.UFS.Remove(dst)
		return fmt.Errorf("download %q: %v", url, err)
	}

	duration := time.Since(startedAt)
	base.LogInfo(LogIO, "downloaded %v in %v (%v/s)",
		base.SizeInBytes(written), duration.Round(time.Millisecond),
		base.SizeInBytes(float64(written)/duration.Seconds()))
	return nil
}

/***************************************
 * Progress reporting
 ***************************************/

type progressReader struct {
	rd          io.Reader
	total       int64
	seen        int64
	lastPercent int
}

// newProgressReader only reports when attached to an interactive shell,
// logs from CI runs stay clean.
func newProgressReader(rd io.Reader, total int64) io.Reader {
	if total <= 0 || !base.EnableInteractiveShell() {
		return rd
	}
	return &progressReader{rd: rd, total: total, lastPercent: -1}
}

func (x *progressReader) Read(p []byte) (n int, err error) {
	n, err = x.rd.Read(p)
	x.seen += int64(n)

	if percent := int(x.seen * 100 / x.total); percent != x.lastPercent {
		x.lastPercent = percent
		fmt.Fprintf(os.Stderr, "\rdownloading... %3d%% of %v", percent, base.SizeInBytes(x.total))
		if percent == 100 {
			fmt.Fprintln(os.Stderr)
		}
	}
	return
}
