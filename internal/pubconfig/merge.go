package pubconfig

// Merge combines two configurations leaf by leaf: the incoming side wins
// wherever it carries a non-empty value, the base survives everywhere
// else. List fields replace wholesale when the incoming list is non-empty.
// Boolean fields always take the incoming side (there is no representable
// unset state); call sites layering trusted over untrusted sources rely on
// that. The one structural exception is Metadata.Sources, which unions.
//
// Merge is total and side-effect free: both arguments are left untouched
// and the result shares no list storage with either.
func Merge(base, incoming Config) Config {
	out := Config{
		Credentials: Credentials{
			Username: pick(base.Credentials.Username, incoming.Credentials.Username),
			Password: pick(base.Credentials.Password, incoming.Credentials.Password),
		},
		Project: ProjectInfo{
			Name:        pick(base.Project.Name, incoming.Project.Name),
			Description: pick(base.Project.Description, incoming.Project.Description),
			URL:         pick(base.Project.URL, incoming.Project.URL),
			SCM: SCMInfo{
				URL:                 pick(base.Project.SCM.URL, incoming.Project.SCM.URL),
				Connection:          pick(base.Project.SCM.Connection, incoming.Project.SCM.Connection),
				DeveloperConnection: pick(base.Project.SCM.DeveloperConnection, incoming.Project.SCM.DeveloperConnection),
			},
			License: License{
				Name:         pick(base.Project.License.Name, incoming.Project.License.Name),
				URL:          pick(base.Project.License.URL, incoming.Project.License.URL),
				Distribution: pick(base.Project.License.Distribution, incoming.Project.License.Distribution),
			},
			Developers: pickDevelopers(base.Project.Developers, incoming.Project.Developers),
			IssueTracker: IssueTracker{
				System: pick(base.Project.IssueTracker.System, incoming.Project.IssueTracker.System),
				URL:    pick(base.Project.IssueTracker.URL, incoming.Project.IssueTracker.URL),
			},
		},
		Signing: Signing{
			KeyID:       pick(base.Signing.KeyID, incoming.Signing.KeyID),
			Password:    pick(base.Signing.Password, incoming.Signing.Password),
			KeyRingFile: pick(base.Signing.KeyRingFile, incoming.Signing.KeyRingFile),
		},
		Publishing: Publishing{
			// Booleans: incoming always wins.
			AutoPublish:  incoming.Publishing.AutoPublish,
			DryRun:       incoming.Publishing.DryRun,
			Aggregate:    incoming.Publishing.Aggregate,
			Publications: pickList(base.Publishing.Publications, incoming.Publishing.Publications),
			Exclusions:   pickList(base.Publishing.Exclusions, incoming.Publishing.Exclusions),
		},
		Validation: ValidationOptions{
			Strict:    incoming.Validation.Strict,
			SkipCodes: pickList(base.Validation.SkipCodes, incoming.Validation.SkipCodes),
		},
		Detection: DetectionOptions{
			Disabled:      incoming.Detection.Disabled,
			AllowNetwork:  incoming.Detection.AllowNetwork,
			SkipDetectors: pickList(base.Detection.SkipDetectors, incoming.Detection.SkipDetectors),
		},
		Metadata: Metadata{
			SchemaVersion: pick(base.Metadata.SchemaVersion, incoming.Metadata.SchemaVersion),
			Sources:       unionStrings(base.Metadata.Sources, incoming.Metadata.Sources),
		},
	}

	out.Metadata.UpdatedAt = base.Metadata.UpdatedAt
	if !incoming.Metadata.UpdatedAt.IsZero() {
		out.Metadata.UpdatedAt = incoming.Metadata.UpdatedAt
	}

	return out
}

// FillEmpty fills gaps in acc from candidate: every field keeps the
// accumulator's value when it is non-empty and takes the candidate's
// otherwise. Unlike Merge, booleans here follow the emptiness rule —
// false counts as "no opinion" and may be filled — so that default
// providers can supply flag defaults without ever overriding a set flag.
// Metadata.Sources unions, as always.
func FillEmpty(acc, candidate Config) Config {
	out := Merge(candidate, acc)

	// Merge took acc's booleans unconditionally; apply the emptiness rule.
	out.Publishing.AutoPublish = acc.Publishing.AutoPublish || candidate.Publishing.AutoPublish
	out.Publishing.DryRun = acc.Publishing.DryRun || candidate.Publishing.DryRun
	out.Publishing.Aggregate = acc.Publishing.Aggregate || candidate.Publishing.Aggregate
	out.Validation.Strict = acc.Validation.Strict || candidate.Validation.Strict
	out.Detection.Disabled = acc.Detection.Disabled || candidate.Detection.Disabled
	out.Detection.AllowNetwork = acc.Detection.AllowNetwork || candidate.Detection.AllowNetwork

	out.Metadata.UpdatedAt = acc.Metadata.UpdatedAt
	if out.Metadata.UpdatedAt.IsZero() {
		out.Metadata.UpdatedAt = candidate.Metadata.UpdatedAt
	}

	return out
}

func pick(base, incoming string) string {
	if incoming != "" {
		return incoming
	}
	return base
}

func pickList(base, incoming []string) []string {
	if len(incoming) > 0 {
		return append([]string(nil), incoming...)
	}
	if len(base) > 0 {
		return append([]string(nil), base...)
	}
	return nil
}

func pickDevelopers(base, incoming []Developer) []Developer {
	if len(incoming) > 0 {
		return append([]Developer(nil), incoming...)
	}
	if len(base) > 0 {
		return append([]Developer(nil), base...)
	}
	return nil
}

// unionStrings appends entries of extra not already present in base,
// preserving first-seen order.
func unionStrings(base, extra []string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := append([]string(nil), base...)
	for _, s := range extra {
		if !containsString(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func containsString(ss []string, s string) bool {
	for _, item := range ss {
		if item == s {
			return true
		}
	}
	return false
}
