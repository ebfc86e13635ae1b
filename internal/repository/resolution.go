package repository

import "backend/internal/model"

// BlocTable maps a geographic bloc code (as it appears in the catalog's
// origin_country_code column) to its member country codes. Jurisdictions can
// extend the default table at wiring time.
type BlocTable map[string][]string

// DefaultBlocs covers the trade blocs the catalog publishes shared rates for.
func DefaultBlocs() BlocTable {
	return BlocTable{
		"EU": {
			"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR",
			"DE", "GR", "HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL",
			"PL", "PT", "RO", "SK", "SI", "ES", "SE",
		},
		"ASEAN": {"BN", "KH", "ID", "LA", "MY", "MM", "PH", "SG", "TH", "VN"},
		"EFTA":  {"IS", "LI", "NO", "CH"},
	}
}

// blocsFor returns the bloc codes the given country belongs to.
func (t BlocTable) blocsFor(countryCode string) []string {
	var blocs []string
	for bloc, members := range t {
		for _, m := range members {
			if m == countryCode {
				blocs = append(blocs, bloc)
				break
			}
		}
	}
	return blocs
}

// ResolveRate selects the most specific catalog row for an origin from a set
// of rows sharing a code. Precedence is an explicit ordered policy:
//
//  1. row for the specific origin country
//  2. row for a geographic bloc the origin belongs to
//  3. rest-of-world sentinel row
//  4. originless row (applies to all origins)
//
// Returns nil when no rule matches. An empty origin skips rules 1-2.
func ResolveRate(rows []model.TariffRate, originCode string, blocs BlocTable) *model.TariffRate {
	if len(rows) == 0 {
		return nil
	}

	type rule func(r *model.TariffRate) bool

	policy := make([]rule, 0, 4)
	if originCode != "" {
		policy = append(policy, func(r *model.TariffRate) bool {
			return r.OriginCode() == originCode
		})
		memberOf := blocs.blocsFor(originCode)
		policy = append(policy, func(r *model.TariffRate) bool {
			for _, bloc := range memberOf {
				if r.OriginCode() == bloc {
					return true
				}
			}
			return false
		})
	}
	policy = append(policy,
		func(r *model.TariffRate) bool { return r.OriginCode() == model.OriginRestOfWorld },
		func(r *model.TariffRate) bool { return r.OriginCode() == "" },
	)

	for _, matches := range policy {
		for i := range rows {
			if matches(&rows[i]) {
				return &rows[i]
			}
		}
	}
	return nil
}
