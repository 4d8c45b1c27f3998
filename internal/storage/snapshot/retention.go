package snapshot

// RetentionPolicy decides how many snapshots of a stem survive a prune.
type RetentionPolicy struct {
	// KeepCount is the number of newest snapshots kept. Values below
	// zero behave as zero.
	KeepCount int
}

// Split partitions a newest-first list into the snapshots to keep and
// the snapshots to delete.
func (p RetentionPolicy) Split(infos []Info) (keep, drop []Info) {
	n := p.KeepCount
	if n < 0 {
		n = 0
	}
	if n > len(infos) {
		n = len(infos)
	}
	return infos[:n], infos[n:]
}

// PruneResult reports what a prune did.
type PruneResult struct {
	Listed  int `json:"listed"`
	Kept    int `json:"kept"`
	Deleted int `json:"deleted"`
	// Skipped counts snapshots that should have been deleted but could
	// not be, e.g. because the file was locked.
	Skipped int `json:"skipped"`
}

// Prune deletes all but the keepCount newest snapshots of stem in dir.
//
// Prune never fails: a listing error leaves everything in place and a
// failed deletion is counted in Skipped while the remaining files are
// still processed.
func (s *Store) Prune(dir, stem string, keepCount int) PruneResult {
	infos, err := s.List(dir, stem)
	if err != nil {
		s.logger.Warn("prune: list snapshots failed",
			"dir", dir,
			"stem", stem,
			"error", err,
		)
		return PruneResult{}
	}

	keep, drop := RetentionPolicy{KeepCount: keepCount}.Split(infos)
	result := PruneResult{
		Listed: len(infos),
		Kept:   len(keep),
	}
	for _, info := range drop {
		if err := s.remove(info.Path); err != nil {
			s.logger.Warn("prune: delete snapshot failed",
				"path", info.Path,
				"error", err,
			)
			result.Skipped++
			continue
		}
		result.Deleted++
	}

	if result.Deleted > 0 || result.Skipped > 0 {
		s.logger.Info("snapshots pruned",
			"dir", dir,
			"stem", stem,
			"keep", keepCount,
			"deleted", result.Deleted,
			"skipped", result.Skipped,
		)
	}
	return result
}
