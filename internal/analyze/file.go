package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/quantfold/statext/internal/layout"
)

// FileProvider replays a saved AnalyzeDocument JSON response from disk for
// offline runs and debugging. The document bytes argument is ignored.
type FileProvider struct {
	Path string
}

func (f *FileProvider) AnalyzeDocument(_ context.Context, _ []byte) ([]layout.Element, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file provider path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return DecodeResponse(b)
}

// wireResponse mirrors the subset of the AnalyzeDocument response shape this
// tool reads.
type wireResponse struct {
	Blocks []wireBlock `json:"Blocks"`
}

type wireBlock struct {
	BlockType     string `json:"BlockType"`
	Id            string `json:"Id"`
	Text          string `json:"Text"`
	Page          int    `json:"Page"`
	RowIndex      int    `json:"RowIndex"`
	ColumnIndex   int    `json:"ColumnIndex"`
	Relationships []struct {
		Type string   `json:"Type"`
		Ids  []string `json:"Ids"`
	} `json:"Relationships"`
}

// DecodeResponse parses a raw AnalyzeDocument JSON body into layout elements.
func DecodeResponse(b []byte) ([]layout.Element, error) {
	var resp wireResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("parse blocks json: %w", err)
	}
	els := make([]layout.Element, 0, len(resp.Blocks))
	for _, blk := range resp.Blocks {
		el := layout.Element{
			ID:          blk.Id,
			Kind:        layout.Kind(blk.BlockType),
			Page:        blk.Page,
			Text:        blk.Text,
			RowIndex:    blk.RowIndex,
			ColumnIndex: blk.ColumnIndex,
		}
		for _, rel := range blk.Relationships {
			el.Relationships = append(el.Relationships, layout.Relationship{
				Type: layout.RelationshipType(rel.Type),
				IDs:  rel.Ids,
			})
		}
		els = append(els, el)
	}
	return els, nil
}
