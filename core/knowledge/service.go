package knowledge

import "context"

type (
	Repository interface {
		CreateItem(ctx context.Context, item Item) (Item, error)
		// QueryAllItems returns the whole corpus ordered by category then title.
		QueryAllItems(ctx context.Context) ([]Item, error)

		CreateTemplate(ctx context.Context, tpl Template) (Template, error)
		QueryAllTemplates(ctx context.Context) ([]Template, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateItem(ctx context.Context, ni NewItem) (Item, error) {
	item := Item{
		Category: ni.Category,
		Title:    ni.Title,
		Content:  ni.Content,
		Keywords: ni.Keywords,
	}
	return svc.repo.CreateItem(ctx, item)
}

func (svc *Service) QueryAllItems(ctx context.Context) ([]Item, error) {
	return svc.repo.QueryAllItems(ctx)
}

func (svc *Service) CreateTemplate(ctx context.Context, tpl Template) (Template, error) {
	return svc.repo.CreateTemplate(ctx, tpl)
}

func (svc *Service) QueryAllTemplates(ctx context.Context) ([]Template, error) {
	return svc.repo.QueryAllTemplates(ctx)
}
