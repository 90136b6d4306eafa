package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunGetData retrieves all secure records of one data type for a user.
// Time-series records are printed in timestamp order; profile records by
// field name.
func RunGetData(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	w io.Writer,
	userID string,
	dataTypeStr string,
	format string,
) error {
	dataType, err := parseDataType(dataTypeStr)
	if err != nil {
		return err
	}

	records := coordinator.GetSecureData(ctx, userID, dataType)

	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if records.ByField != nil {
			return encoder.Encode(records.ByField)
		}
		return encoder.Encode(records.ByTimestamp)
	}

	if records.Empty() {
		fmt.Fprintln(w, "No records found")
		return nil
	}

	if records.ByField != nil {
		fields := make([]string, 0, len(records.ByField))
		for field := range records.ByField {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(w, "%s: %s\n", field, records.ByField[field])
		}
		return nil
	}

	timestamps := make([]int64, 0, len(records.ByTimestamp))
	for timestamp := range records.ByTimestamp {
		timestamps = append(timestamps, timestamp)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	for _, timestamp := range timestamps {
		fmt.Fprintf(w, "%d: %s\n", timestamp, records.ByTimestamp[timestamp])
	}
	return nil
}
