package ingest

import (
	"context"
	"errors"
	"log"
)

// ImportFiles imports every stats file in turn and returns the paths that
// failed. Games imported before are skipped without counting as failures.
func ImportFiles(ctx context.Context, im *Importer, paths []string) []string {
	failed := []string{}
	for _, path := range paths {
		log.Printf("importing %s", path)
		if err := importFile(ctx, im, path); err != nil {
			if errors.Is(err, ErrGameExists) {
				log.Printf("%s: game already exists, skipping", path)
				continue
			}
			log.Printf("failed to import %s: %v", path, err)
			failed = append(failed, path)
			continue
		}
		log.Printf("completed importing %s", path)
	}
	return failed
}

func importFile(ctx context.Context, im *Importer, path string) error {
	stats, err := ReadFile(path)
	if err != nil {
		return err
	}
	statLink := stats.StatLink
	if statLink == "" {
		statLink = path
	}
	_, err = im.Import(ctx, statLink, stats)
	return err
}
