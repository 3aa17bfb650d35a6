/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ota

import (
	"fmt"
	"io"

	"github.com/OSSystems/pkg/log"
	"github.com/pkg/errors"

	"github.com/soilwatch/irrigatord/client"
	"github.com/soilwatch/irrigatord/hal"
)

// Updater checks the firmware service for a newer image and stages it. Every
// failure is non-fatal to the wake cycle: the caller logs and proceeds to
// sleep, and only a fully verified image reports applied=true.
type Updater struct {
	Fetcher client.FirmwareFetcher
	Flash   hal.FirmwareWriter
	Current Version
}

func NewUpdater(fetcher client.FirmwareFetcher, flash hal.FirmwareWriter, current Version) *Updater {
	return &Updater{
		Fetcher: fetcher,
		Flash:   flash,
		Current: current,
	}
}

// CheckAndApply performs the once-daily update check. It returns true only
// when a newer image was downloaded completely, verified and committed; the
// caller then restarts the device instead of scheduling sleep.
func (u *Updater) CheckAndApply(api client.ApiRequester, modelID string) (bool, error) {
	latestRaw, err := u.Fetcher.LatestVersion(api, modelID)
	if err != nil {
		return false, errors.Wrap(err, "failed to read latest firmware version")
	}

	latest, err := ParseVersion(latestRaw)
	if err != nil {
		// Treated the same as "no update available".
		return false, errors.Wrap(err, "rejecting remote version string")
	}

	if !latest.NewerThan(u.Current) {
		log.Debug("firmware up to date: current=", u.Current, " latest=", latest)
		return false, nil
	}

	log.Info("firmware update available: current=", u.Current, " latest=", latest)

	url, err := u.Fetcher.DownloadURL(api, modelID)
	if err != nil {
		return false, errors.Wrap(err, "failed to read firmware download url")
	}

	rd, size, err := u.Fetcher.Download(api, url, 0)
	if err != nil {
		return false, errors.Wrap(err, "firmware download failed")
	}
	defer rd.Close()

	if size <= 0 {
		return false, errors.New("firmware image content length unknown")
	}

	wr, err := u.Flash.Begin(size)
	if err != nil {
		return false, errors.Wrap(err, "staging area rejected image")
	}

	written, err := io.Copy(wr, rd)
	if err != nil {
		u.Flash.Abort()
		return false, errors.Wrap(err, "firmware stream interrupted")
	}

	if written != size {
		u.Flash.Abort()
		return false, errors.Errorf("firmware stream truncated: %d of %d bytes", written, size)
	}

	if err = u.Flash.Commit(); err != nil {
		return false, errors.Wrap(err, "firmware finalize failed")
	}

	log.Info(fmt.Sprintf("firmware %s staged successfully (%d bytes)", latest, written))

	return true, nil
}
