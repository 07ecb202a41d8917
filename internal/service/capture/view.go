package capture

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SigningView returns what the signing page shows to the holder of token:
// the signer, the request, the document title and the areas the signer may
// sign with their signed state.
func (s *Service) SigningView(ctx context.Context, token string) (View, error) {
	signer, err := s.guard.Authorize(ctx, token)
	if err != nil {
		return View{}, err
	}

	req, err := s.requests.GetByID(ctx, signer.SignatureRequestID)
	if err != nil {
		return View{}, fmt.Errorf("get signature request: %w", err)
	}
	doc, err := s.documents.GetByID(ctx, req.DocumentID)
	if err != nil {
		return View{}, fmt.Errorf("get document: %w", err)
	}

	areas, err := s.areas.ListByDocument(ctx, req.DocumentID)
	if err != nil {
		return View{}, fmt.Errorf("list signature areas: %w", err)
	}
	bindings, err := s.areas.ListBindingsByDocument(ctx, req.DocumentID)
	if err != nil {
		return View{}, fmt.Errorf("list area bindings: %w", err)
	}
	boundTo := make(map[uuid.UUID]uuid.UUID, len(bindings))
	for _, b := range bindings {
		boundTo[b.AreaID] = b.SignerID
	}

	view := View{Signer: signer, Request: req, DocumentTitle: doc.Title}
	for _, a := range areas {
		if !signer.Role.CanSign(a.Role) {
			continue
		}
		by, signed := boundTo[a.ID]
		view.Areas = append(view.Areas, AreaView{
			Area:       a,
			Signed:     signed,
			SignedByMe: signed && by == signer.ID,
		})
	}
	return view, nil
}
