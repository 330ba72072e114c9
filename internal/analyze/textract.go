package analyze

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/quantfold/statext/internal/layout"
)

// TextractProvider adapts the AWS Textract client to the Analyzer interface.
// Each call requests table and form feature detection for one document and
// performs no retry of its own; a service failure surfaces to the caller.
type TextractProvider struct {
	Client *textract.Client
}

// NewTextract builds a Textract-backed provider using the ambient AWS
// credential chain. A non-empty region overrides the environment.
func NewTextract(ctx context.Context, region string) (*TextractProvider, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &TextractProvider{Client: textract.NewFromConfig(cfg)}, nil
}

func (p *TextractProvider) AnalyzeDocument(ctx context.Context, doc []byte) ([]layout.Element, error) {
	out, err := p.Client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &types.Document{Bytes: doc},
		FeatureTypes: []types.FeatureType{types.FeatureTypeTables, types.FeatureTypeForms},
	})
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}
	return fromBlocks(out.Blocks), nil
}

// fromBlocks converts SDK blocks into layout elements. Unknown block types
// keep their kind verbatim so indexing stays complete.
func fromBlocks(blocks []types.Block) []layout.Element {
	els := make([]layout.Element, 0, len(blocks))
	for _, b := range blocks {
		el := layout.Element{
			ID:          aws.ToString(b.Id),
			Kind:        layout.Kind(b.BlockType),
			Page:        int(aws.ToInt32(b.Page)),
			Text:        aws.ToString(b.Text),
			RowIndex:    int(aws.ToInt32(b.RowIndex)),
			ColumnIndex: int(aws.ToInt32(b.ColumnIndex)),
		}
		for _, rel := range b.Relationships {
			el.Relationships = append(el.Relationships, layout.Relationship{
				Type: layout.RelationshipType(rel.Type),
				IDs:  rel.Ids,
			})
		}
		els = append(els, el)
	}
	return els
}
