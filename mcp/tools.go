package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lvillar/showroomdocs"
	"github.com/lvillar/showroomdocs/record"
	"github.com/lvillar/showroomdocs/verify"
	"github.com/lvillar/showroomdocs/words"
)

// PDFMIMEType is the media type of rendered documents.
const PDFMIMEType = "application/pdf"

// RegisterTools adds the document tools backed by eng and gen.
func RegisterTools(s *Server, eng *showroomdocs.Engine, gen *verify.Generator) {
	s.AddTool(renderDocumentTool(eng))
	s.AddTool(renderTokenReceiptTool(eng))
	s.AddTool(amountInWordsTool())
	if gen != nil {
		s.AddTool(verificationURLTool(gen))
	}
}

func renderSchema(recordDesc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"record": map[string]any{
				"type":        "object",
				"description": recordDesc,
			},
			"outputPath": map[string]any{
				"type":        "string",
				"description": "Optional file path to save the PDF. If omitted the PDF is returned inline as base64.",
			},
		},
		"required": []string{"record"},
	}
}

type renderArgs struct {
	Record     json.RawMessage `json:"record"`
	OutputPath string          `json:"outputPath"`
}

func parseRenderArgs(raw json.RawMessage) (renderArgs, error) {
	var args renderArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("invalid arguments: %w", err)
	}
	if len(bytes.TrimSpace(args.Record)) == 0 || string(bytes.TrimSpace(args.Record)) == "null" {
		return args, errors.New("missing 'record' argument")
	}
	return args, nil
}

func renderDocumentTool(eng *showroomdocs.Engine) Tool {
	return Tool{
		Name:        "render_document",
		Description: "Render a vehicle delivery or purchase order as a two-copy PDF (customer copy and showroom copy).",
		InputSchema: renderSchema("Fully resolved transaction record: showroom, vehicle, parties, amount, payment methods and balance."),
		Handler: func(ctx context.Context, raw json.RawMessage) (ToolResult, error) {
			args, err := parseRenderArgs(raw)
			if err != nil {
				return ToolResult{}, err
			}
			d, err := record.Decode(bytes.NewReader(args.Record))
			if err != nil {
				return ToolResult{}, err
			}
			pdf, err := eng.Render(ctx, d)
			if err != nil {
				return ToolResult{}, err
			}
			return deliver(pdf, args.OutputPath)
		},
	}
}

func renderTokenReceiptTool(eng *showroomdocs.Engine) Tool {
	return Tool{
		Name:        "render_token_receipt",
		Description: "Render a token receipt for an advance paid against a car as a two-copy PDF.",
		InputSchema: renderSchema("Token receipt: showroom, amount received, payer, car and the two parties."),
		Handler: func(ctx context.Context, raw json.RawMessage) (ToolResult, error) {
			args, err := parseRenderArgs(raw)
			if err != nil {
				return ToolResult{}, err
			}
			t, err := record.DecodeTokenReceipt(bytes.NewReader(args.Record))
			if err != nil {
				return ToolResult{}, err
			}
			pdf, err := eng.RenderTokenReceipt(ctx, t)
			if err != nil {
				return ToolResult{}, err
			}
			return deliver(pdf, args.OutputPath)
		},
	}
}

// deliver saves pdf to path, or returns it inline when path is empty.
func deliver(pdf []byte, path string) (ToolResult, error) {
	if path != "" {
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return Text("PDF written to %s (%d bytes)", path, len(pdf)), nil
	}
	res := Text("PDF rendered (%d bytes)", len(pdf))
	res.Content = append(res.Content, ContentBlock{
		Type:     "resource",
		MIMEType: PDFMIMEType,
		Data:     base64.StdEncoding.EncodeToString(pdf),
	})
	return res, nil
}

func amountInWordsTool() Tool {
	return Tool{
		Name:        "amount_in_words",
		Description: "Spell out an amount in words using Thousand, Lakh and Crore groupings, as printed on receipts.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"amount": map[string]any{
					"type":        "number",
					"description": "Non-negative amount; only the integer part is spelled out.",
				},
			},
			"required": []string{"amount"},
		},
		Handler: func(_ context.Context, raw json.RawMessage) (ToolResult, error) {
			var args struct {
				Amount *float64 `json:"amount"`
			}
			if err := json.Unmarshal(raw, &args); err != nil {
				return ToolResult{}, fmt.Errorf("invalid arguments: %w", err)
			}
			if args.Amount == nil {
				return ToolResult{}, errors.New("missing 'amount' argument")
			}
			return Text("%s", words.ToWords(*args.Amount)), nil
		},
	}
}

func verificationURLTool(gen *verify.Generator) Tool {
	return Tool{
		Name:        "verification_url",
		Description: "Return the public verification link encoded in a document's code.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Document id",
				},
			},
			"required": []string{"id"},
		},
		Handler: func(_ context.Context, raw json.RawMessage) (ToolResult, error) {
			var args struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw, &args); err != nil {
				return ToolResult{}, fmt.Errorf("invalid arguments: %w", err)
			}
			if args.ID == "" {
				return ToolResult{}, verify.ErrEmptyID
			}
			return Text("%s", gen.URL(args.ID)), nil
		},
	}
}
