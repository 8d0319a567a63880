package services

import (
	"context"
	"strings"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// categoryGroupService manages category groups. System groups reject every
// user edit.
type categoryGroupService struct {
	writer *Writer
}

// NewCategoryGroupService creates a new CategoryGroupServicer.
func NewCategoryGroupService(writer *Writer) CategoryGroupServicer {
	return &categoryGroupService{writer: writer}
}

func isReservedGroupName(name string) bool {
	return strings.EqualFold(name, models.CreditCardPaymentsGroup) || strings.EqualFold(name, models.HiddenCategoriesGroup)
}

// CreateGroup adds a user group at the end of the budget's groups.
func (s *categoryGroupService) CreateGroup(ctx context.Context, userID, budgetID, name string) (*models.CategoryGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name is required")
	}
	if isReservedGroupName(name) {
		return nil, apperrors.ErrSystemGroupProtected
	}

	var group *models.CategoryGroup
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if _, err := st.GetBudget(userID, budgetID); err != nil {
			return err
		}
		order, err := st.NextGroupOrder(userID, budgetID)
		if err != nil {
			return err
		}
		group = &models.CategoryGroup{
			UserID:       userID,
			BudgetID:     budgetID,
			Name:         name,
			DisplayOrder: order,
		}
		return st.CreateCategoryGroup(group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetBudgetGroups lists a budget's groups with their categories.
func (s *categoryGroupService) GetBudgetGroups(ctx context.Context, userID, budgetID string) ([]models.CategoryGroup, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	return st.ListCategoryGroups(userID, budgetID)
}

// UpdateGroup renames or reorders a user group.
func (s *categoryGroupService) UpdateGroup(ctx context.Context, userID, groupID string, name *string, displayOrder *int) (*models.CategoryGroup, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name cannot be empty")
		}
		if isReservedGroupName(trimmed) {
			return nil, apperrors.ErrSystemGroupProtected
		}
		name = &trimmed
	}

	var group *models.CategoryGroup
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		var err error
		if group, err = st.GetCategoryGroup(userID, groupID); err != nil {
			return err
		}
		if group.IsSystemGroup {
			return apperrors.ErrSystemGroupProtected
		}
		if name != nil {
			group.Name = *name
		}
		if displayOrder != nil {
			group.DisplayOrder = *displayOrder
		}
		return st.SaveCategoryGroup(group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup deletes an empty user group.
func (s *categoryGroupService) DeleteGroup(ctx context.Context, userID, groupID string) error {
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		group, err := st.GetCategoryGroup(userID, groupID)
		if err != nil {
			return err
		}
		if group.IsSystemGroup {
			return apperrors.ErrSystemGroupProtected
		}
		n, err := st.CountGroupCategories(userID, groupID)
		if err != nil {
			return err
		}
		hidden, err := st.HiddenFrom(userID, groupID)
		if err != nil {
			return err
		}
		if n > 0 || len(hidden) > 0 {
			return apperrors.ErrCategoryGroupNotEmpty
		}
		return st.DeleteCategoryGroup(userID, groupID)
	})
}

// SetHidden hides a user group by moving its categories into "Hidden
// Categories", or restores them when unhiding.
func (s *categoryGroupService) SetHidden(ctx context.Context, userID, groupID string, hidden bool) (*models.CategoryGroup, error) {
	var group *models.CategoryGroup
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		var err error
		if group, err = st.GetCategoryGroup(userID, groupID); err != nil {
			return err
		}
		if group.IsSystemGroup {
			return apperrors.ErrSystemGroupProtected
		}
		if group.IsHidden == hidden {
			return nil
		}

		hiddenGroup, err := st.SystemGroup(userID, group.BudgetID, models.HiddenCategoriesGroup)
		if err != nil {
			return err
		}
		if hiddenGroup == nil {
			return apperrors.WithMessage(apperrors.ErrCategoryGroupNotFound, "budget has no Hidden Categories group")
		}

		if hidden {
			cats, err := st.ListCategories(userID, "", group.ID)
			if err != nil {
				return err
			}
			for i := range cats {
				from := group.ID
				cats[i].CategoryGroupID = hiddenGroup.ID
				cats[i].HiddenFromGroupID = &from
				if err := st.SaveCategory(&cats[i]); err != nil {
					return err
				}
			}
		} else {
			cats, err := st.HiddenFrom(userID, group.ID)
			if err != nil {
				return err
			}
			for i := range cats {
				cats[i].CategoryGroupID = group.ID
				cats[i].HiddenFromGroupID = nil
				if err := st.SaveCategory(&cats[i]); err != nil {
					return err
				}
			}
		}

		group.IsHidden = hidden
		return st.SaveCategoryGroup(group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// ReorderGroups sets display_order to each group's position in groupIDs.
// Repeating the same call changes nothing.
func (s *categoryGroupService) ReorderGroups(ctx context.Context, userID string, groupIDs []string) error {
	if len(groupIDs) == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "group_ids is required")
	}
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		groups, err := st.GetCategoryGroups(userID, groupIDs)
		if err != nil {
			return err
		}
		if len(groups) != len(uniq(groupIDs)) {
			return apperrors.ErrCategoryGroupNotFound
		}
		for _, g := range groups[1:] {
			if g.BudgetID != groups[0].BudgetID {
				return apperrors.ErrCrossBudget
			}
		}
		for i, id := range groupIDs {
			if err := st.SetGroupOrder(userID, id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
