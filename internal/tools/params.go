package tools

import (
	"fmt"
	"strings"
)

// Defaults applied when optional parameters are absent
const (
	DefaultLimit = 10
	DefaultSkip  = 0
)

func requireString(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required and must be a non-empty string", name)
	}
	return nil
}

type ListCollectionsParams struct {
	Database string `json:"database"`
}

func (p *ListCollectionsParams) Validate() error {
	return requireString("database", p.Database)
}

type FindDocumentsParams struct {
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Query      map[string]any `json:"query,omitempty"`
	Limit      *int64         `json:"limit,omitempty"`
	Skip       *int64         `json:"skip,omitempty"`
}

func (p *FindDocumentsParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	if err := requireString("collection", p.Collection); err != nil {
		return err
	}
	if p.Limit != nil && *p.Limit < 1 {
		return fmt.Errorf("limit must be a positive integer")
	}
	if p.Skip != nil && *p.Skip < 0 {
		return fmt.Errorf("skip must not be negative")
	}
	return nil
}

// EffectiveLimit returns the requested limit or the default of 10
func (p *FindDocumentsParams) EffectiveLimit() int64 {
	if p.Limit != nil {
		return *p.Limit
	}
	return DefaultLimit
}

// EffectiveSkip returns the requested skip or the default of 0
func (p *FindDocumentsParams) EffectiveSkip() int64 {
	if p.Skip != nil {
		return *p.Skip
	}
	return DefaultSkip
}

type CountDocumentsParams struct {
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter,omitempty"`
}

func (p *CountDocumentsParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	return requireString("collection", p.Collection)
}

type InsertDocumentParams struct {
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Document   map[string]any `json:"document"`
}

func (p *InsertDocumentParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	if err := requireString("collection", p.Collection); err != nil {
		return err
	}
	if p.Document == nil {
		return fmt.Errorf("document is required")
	}
	return nil
}

type UpdateDocumentsParams struct {
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter"`
	Update     map[string]any `json:"update"`
	UpdateMany bool           `json:"updateMany,omitempty"`
}

func (p *UpdateDocumentsParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	if err := requireString("collection", p.Collection); err != nil {
		return err
	}
	if p.Filter == nil {
		return fmt.Errorf("filter is required")
	}
	if p.Update == nil || len(p.Update) == 0 {
		return fmt.Errorf("update is required and cannot be empty")
	}
	return nil
}

type DeleteDocumentsParams struct {
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter"`
	DeleteMany bool           `json:"deleteMany,omitempty"`
}

func (p *DeleteDocumentsParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	if err := requireString("collection", p.Collection); err != nil {
		return err
	}
	if p.Filter == nil {
		return fmt.Errorf("filter is required")
	}
	return nil
}

type DropCollectionParams struct {
	Database   string `json:"database"`
	Collection string `json:"collection"`
}

func (p *DropCollectionParams) Validate() error {
	if err := requireString("database", p.Database); err != nil {
		return err
	}
	return requireString("collection", p.Collection)
}
