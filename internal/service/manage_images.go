package service

import (
	"io"

	"github.com/inkwellgoods/storefront/internal/model"
)

// AddImage stores one uploaded image binary for a product and records it at
// the end of the product's display order. The upload handler calls this once
// per file in the request.
func (s *Manage) AddImage(productID uint, filename string, r io.Reader) (*model.ProductImage, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}

	ref, err := s.blobs.Save(filename, r)
	if err != nil {
		return nil, err
	}

	max, err := s.images.MaxPosition(productID)
	if err != nil {
		return nil, err
	}

	image := &model.ProductImage{
		ProductID: productID,
		Path:      ref,
		Position:  max + 1,
	}
	if err := s.images.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages returns a product's images in display order
func (s *Manage) ListImages(productID uint) ([]model.ProductImage, error) {
	return s.images.ListByProduct(productID)
}

// DeleteImage removes one image row and its stored blob
func (s *Manage) DeleteImage(id uint) error {
	image, err := s.images.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(image.ID); err != nil {
		return err
	}
	// Blob removal is best effort; the row is already gone.
	return s.blobs.Remove(image.Path)
}

// ReorderImages assigns each image's position from its index in the given
// ordered id list. Ids that do not belong to the product are skipped.
func (s *Manage) ReorderImages(productID uint, orderedIDs []uint) error {
	images, err := s.images.ListByProduct(productID)
	if err != nil {
		return err
	}

	owned := make(map[uint]bool, len(images))
	for _, img := range images {
		owned[img.ID] = true
	}

	position := 0
	for _, id := range orderedIDs {
		if !owned[id] {
			continue
		}
		if err := s.images.UpdatePosition(id, position); err != nil {
			return err
		}
		position++
	}
	return nil
}
