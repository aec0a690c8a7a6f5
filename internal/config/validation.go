package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

// ValidateConfig checks field rules and the cross-widget rules: ids are
// unique, parents exist, precede their children and are floating widgets,
// and dropdowns carry items.
func ValidateConfig(f *File) error {
	if f == nil {
		return overlayerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]Widget, len(f.Widgets))
	for i, w := range f.Widgets {
		if _, dup := seen[w.ID]; dup {
			return overlayerrors.NewValidationError(fieldForWidget(i, "id"), fmt.Sprintf("duplicate widget id %q", w.ID), nil)
		}

		if w.Parent != "" {
			parent, ok := seen[w.Parent]
			switch {
			case w.Parent == w.ID:
				return overlayerrors.NewValidationError(fieldForWidget(i, "parent"), "widget cannot be its own parent", nil)
			case !ok && f.has(w.Parent):
				return overlayerrors.NewValidationError(fieldForWidget(i, "parent"), fmt.Sprintf("parent %q must be declared before %q", w.Parent, w.ID), nil)
			case !ok:
				return overlayerrors.NewValidationError(fieldForWidget(i, "parent"), fmt.Sprintf("references unknown widget %q", w.Parent), nil)
			case !parent.Kind.Floating():
				return overlayerrors.NewValidationError(fieldForWidget(i, "parent"), fmt.Sprintf("parent %q is a %s and cannot contain widgets", w.Parent, parent.Kind), nil)
			}
		}

		switch {
		case w.Kind == KindDropdown && len(w.Items) == 0:
			return overlayerrors.NewValidationError(fieldForWidget(i, "items"), "dropdown needs at least one item", nil)
		case w.Kind != KindDropdown && len(w.Items) > 0:
			return overlayerrors.NewValidationError(fieldForWidget(i, "items"), fmt.Sprintf("items are only valid for dropdowns, not %s", w.Kind), nil)
		}

		seen[w.ID] = w
	}

	return nil
}

func (f *File) has(id string) bool {
	_, ok := f.Widget(id)
	return ok
}

// convertValidationError turns validator output into a ValidationError naming
// the first failing field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fileFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return overlayerrors.NewValidationError(field, msg, err)
	}

	return overlayerrors.NewValidationError("config", err.Error(), err)
}

// fileFieldName drops the root struct name: File.widgets[0].kind becomes
// widgets[0].kind.
func fileFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForWidget(index int, field string) string {
	return fmt.Sprintf("widgets[%d].%s", index, field)
}
