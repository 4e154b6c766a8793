package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/project"
	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// licenseNames lists the files probed for a license text, in order.
var licenseNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "COPYING"}

// licenseSignature maps a phrase that identifies a license text to its
// SPDX identifier and canonical URL. Checked in order; first hit wins.
type licenseSignature struct {
	marker string
	name   string
	url    string
}

var licenseSignatures = []licenseSignature{
	{"Apache License", "Apache-2.0", "https://www.apache.org/licenses/LICENSE-2.0.txt"},
	{"Permission is hereby granted, free of charge", "MIT", "https://opensource.org/licenses/MIT"},
	{"GNU LESSER GENERAL PUBLIC LICENSE", "LGPL-3.0", "https://www.gnu.org/licenses/lgpl-3.0.txt"},
	{"GNU GENERAL PUBLIC LICENSE", "GPL-3.0", "https://www.gnu.org/licenses/gpl-3.0.txt"},
	{"Mozilla Public License Version 2.0", "MPL-2.0", "https://www.mozilla.org/en-US/MPL/2.0/"},
	{"Redistribution and use in source and binary forms", "BSD-3-Clause", "https://opensource.org/licenses/BSD-3-Clause"},
	{"Eclipse Public License - v 2.0", "EPL-2.0", "https://www.eclipse.org/legal/epl-2.0/"},
}

// LicenseFileDetector identifies the project license from a license file
// in the project root. A recognized signature is HIGH confidence.
type LicenseFileDetector struct{}

func (LicenseFileDetector) Name() string { return "license-file" }

func (LicenseFileDetector) Detect(ctx project.Context) Outcome {
	var content string
	for _, name := range licenseNames {
		data, err := ctx.ReadFile(name)
		if errors.Is(err, project.ErrNotExist) {
			continue
		}
		if err != nil {
			return Failed(fmt.Errorf("reading %s: %w", name, err))
		}
		content = string(data)
		break
	}
	if content == "" {
		return NoSignal()
	}

	for _, sig := range licenseSignatures {
		if !strings.Contains(content, sig.marker) {
			continue
		}
		b := newResultBuilder("license-file")
		b.set(PathLicenseName, sig.name, High)
		b.set(PathLicenseURL, sig.url, High)

		cfg := pubconfig.Config{}
		cfg.Project.License = pubconfig.License{Name: sig.name, URL: sig.url}
		return b.outcome(cfg)
	}

	// A license file we cannot classify is worth surfacing.
	b := newResultBuilder("license-file")
	b.warnf("license file present but not recognized")
	return b.outcome(pubconfig.Config{})
}
