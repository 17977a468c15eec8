// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	enqueueOperation = `
		INSERT INTO operations (
			operation_id,
			type,
			collection,
			record_id,
			payload,
			enqueued_at,
			attempt_count,
			last_error,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getLastInsertedSeq = `
		SELECT seq FROM operations WHERE operation_id = ?;`

	getNextPendingOperation = `
		SELECT
			seq,
			operation_id,
			type,
			collection,
			record_id,
			payload,
			enqueued_at,
			attempt_count,
			last_error,
			status
		FROM operations
		WHERE collection = ? AND status = 'pending'
		ORDER BY seq
		LIMIT 1;`

	getPendingCollections = `
		SELECT collection
		FROM operations
		WHERE status = 'pending'
		GROUP BY collection
		ORDER BY MIN(seq);`

	markOperationInFlight = `
		UPDATE operations
		SET status = 'in_flight'
		WHERE operation_id = ? AND status = 'pending';`

	markOperationDone = `
		DELETE FROM operations
		WHERE operation_id = ? AND status = 'in_flight';`

	markOperationRetryable = `
		UPDATE operations
		SET status        = 'pending',
		    attempt_count = attempt_count + 1,
		    last_error    = ?
		WHERE operation_id = ? AND status = 'in_flight';`

	markOperationFailed = `
		UPDATE operations
		SET status        = 'failed',
		    attempt_count = attempt_count + 1,
		    last_error    = ?
		WHERE operation_id = ? AND status = 'in_flight';`

	releaseInFlightOperations = `
		UPDATE operations
		SET status = 'pending'
		WHERE status = 'in_flight';`

	rewriteOperationPayload = `
		UPDATE operations
		SET record_id = ?,
		    payload   = ?
		WHERE operation_id = ? AND status = 'pending';`

	countPendingOperations = `
		SELECT COUNT(*)
		FROM operations
		WHERE status IN ('pending', 'in_flight');`

	readCachedCollection = `
		SELECT
			collection,
			record_id,
			payload,
			originating_operation_id,
			version,
			updated_at
		FROM cached_records
		WHERE collection = ?
		ORDER BY rowid;`

	saveCachedRecord = `
		INSERT INTO cached_records (
			collection,
			record_id,
			payload,
			originating_operation_id,
			version,
			updated_at
		) VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT (collection, record_id) DO UPDATE SET
			payload                  = excluded.payload,
			originating_operation_id = excluded.originating_operation_id,
			version                  = cached_records.version + 1,
			updated_at               = excluded.updated_at;`

	renameCachedRecord = `
		UPDATE cached_records
		SET record_id  = ?,
		    version    = version + 1,
		    updated_at = ?
		WHERE collection = ? AND record_id = ?;`

	deleteCachedRecord = `
		DELETE FROM cached_records
		WHERE collection = ? AND record_id = ?;`

	deleteCachedCollection = `
		DELETE FROM cached_records
		WHERE collection = ?;`
)
