package shared

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"tutorials/shared/cache"
	"tutorials/shared/constant"
	"tutorials/shared/dto"
	"tutorials/shared/timezone"
)

const cacheKeySeparator = ":"

// ConvertStringToID parses a positive integer identifier.
func ConvertStringToID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse id %q: %w", value, err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}

	return id, nil
}

// TransformFields converts the non-zero, db-tagged fields of a struct into a map of updated
// fields and stamps updated_at.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()
		} else {
			updatedFields[fieldName] = field.Interface()
		}
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts with ":".
func BuildCacheKey(prefix string, parts ...any) string {
	key := make([]string, 0, len(parts)+1)
	key = append(key, prefix)

	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithFilter derives a stable key from the rendered where clause and its arguments.
func BuildCacheKeyWithFilter(prefix string, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	digest := xxhash.New()
	_, _ = digest.WriteString(where)

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		_, _ = fmt.Fprintf(digest, "|%s=%v", name, args[name])
	}

	return BuildCacheKey(prefix, strconv.FormatUint(digest.Sum64(), 16))
}

// InvalidateCaches removes every key under prefix. Failures are logged, never returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
