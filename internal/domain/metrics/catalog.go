package metrics

import "github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"

// Catalog índice por ID de las variantes; se arma una vez por carga de datos.
type Catalog map[string]*entity.Variant

// NewCatalog indexa las variantes. Con IDs repetidos gana la última.
func NewCatalog(variants []*entity.Variant) Catalog {
	c := make(Catalog, len(variants))
	for _, v := range variants {
		if v != nil {
			c[v.ID] = v
		}
	}
	return c
}

// lookup devuelve la variante o nil si el ID no está en el catálogo.
func (c Catalog) lookup(id string) *entity.Variant {
	return c[id]
}

func (c Catalog) inCategory(id string, cat entity.Category) (*entity.Variant, bool) {
	v := c.lookup(id)
	if v == nil || v.Category != cat {
		return nil, false
	}
	return v, true
}
