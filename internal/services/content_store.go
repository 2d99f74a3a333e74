package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/models"
)

// Section file names, without extension
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionContact    = "contact"
)

// contentExtensions are tried in order for each section
var contentExtensions = []string{".json", ".yaml", ".yml"}

// ErrSectionMissing is returned when a required section has no file
var ErrSectionMissing = errors.New("content section missing")

// ContentStore loads the site content from a data directory and serves
// consistent snapshots of it. Reload swaps the snapshot atomically; a failed
// reload keeps the previous content.
type ContentStore struct {
	dataPath string
	theme    models.Theme
	log      *zap.Logger

	mu       sync.RWMutex
	site     *models.Site
	loadedAt time.Time
}

// NewContentStore creates a store and performs the initial load
func NewContentStore(ctx context.Context, dataPath string, theme models.Theme, log *zap.Logger) (*ContentStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cs := &ContentStore{
		dataPath: dataPath,
		theme:    theme,
		log:      log,
	}

	if err := cs.Reload(ctx); err != nil {
		return nil, err
	}

	return cs, nil
}

// DataPath returns the directory the store reads from
func (cs *ContentStore) DataPath() string {
	return cs.dataPath
}

// Reload reads every section file again
func (cs *ContentStore) Reload(ctx context.Context) error {
	site := &models.Site{Theme: cs.theme}

	sections := []struct {
		name     string
		dst      any
		required bool
	}{
		{SectionHero, &site.Hero, false},
		{SectionAbout, &site.About, false},
		{SectionExperience, &site.Experience, true},
		{SectionProjects, &site.Projects, true},
		{SectionSkills, &site.Skills, false},
		{SectionContact, &site.Contact, false},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, sec := range sections {
		g.Go(func() error {
			found, err := cs.readSection(ctx, sec.name, sec.dst)
			if err != nil {
				return err
			}
			if !found && sec.required {
				return fmt.Errorf("%w: %s", ErrSectionMissing, sec.name)
			}
			if !found {
				cs.log.Debug("content section not present", zap.String("section", sec.name))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	cs.mu.Lock()
	cs.site = site
	cs.loadedAt = time.Now()
	cs.mu.Unlock()

	cs.log.Info("content loaded",
		zap.String("path", cs.dataPath),
		zap.Int("experience", len(site.Experience.Items)),
		zap.Int("projects", len(site.Projects.Items)))
	return nil
}

// readSection decodes the first existing file for a section into dst
func (cs *ContentStore) readSection(ctx context.Context, name string, dst any) (bool, error) {
	for _, ext := range contentExtensions {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		path := filepath.Join(cs.dataPath, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, dst)
		} else {
			err = yaml.Unmarshal(data, dst)
		}
		if err != nil {
			return false, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return true, nil
	}
	return false, nil
}

// Site returns the current content snapshot. Callers must treat it as read-only.
func (cs *ContentStore) Site() *models.Site {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.site
}

// LoadedAt returns when the current snapshot was read
func (cs *ContentStore) LoadedAt() time.Time {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.loadedAt
}

// IsContentFile reports whether a path names one of the section files
func IsContentFile(path string) bool {
	ext := filepath.Ext(path)
	name := filepath.Base(path)
	name = name[:len(name)-len(ext)]
	for _, e := range contentExtensions {
		if e != ext {
			continue
		}
		switch name {
		case SectionHero, SectionAbout, SectionExperience, SectionProjects, SectionSkills, SectionContact:
			return true
		}
	}
	return false
}
