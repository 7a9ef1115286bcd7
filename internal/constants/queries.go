package constants

// Base queries for the lookup operations. Optional WHERE clauses are folded
// in by the repositories before execution; parameters are always bound
// positionally, never interpolated.

const (
	FindFlightsBase = `
	SELECT df.flight_number,
	       dd1.airport_name AS departure_airport,
	       dd2.airport_name AS arrival_airport,
	       df.scheduled_departure_time,
	       df.scheduled_arrival_time,
	       fs.departure_date,
	       dp.pilot_id,
	       fs.status
	FROM d_flight df
	LEFT JOIN f_schedule fs ON df.flight_id = fs.flight_id
	LEFT JOIN d_destination dd1 ON df.departure_destination_code = dd1.destination_code
	LEFT JOIN d_destination dd2 ON df.arrival_destination_code = dd2.destination_code
	LEFT JOIN d_pilot dp ON fs.pilot_id = dp.pilot_id
	`

	FindFlightsOrder = ` ORDER BY fs.departure_date DESC`

	FindPilotSchedulesBase = `
	SELECT fs.schedule_id,
	       fs.departure_date,
	       fs.flight_id,
	       fs.status,
	       dp.pilot_id,
	       dp.first_name,
	       dp.last_name,
	       df.scheduled_departure_time,
	       df.scheduled_arrival_time,
	       dd1.city AS departure_city,
	       dd2.city AS arrival_city
	FROM f_schedule fs
	JOIN d_pilot dp ON fs.pilot_id = dp.pilot_id
	JOIN d_flight df ON fs.flight_id = df.flight_id
	JOIN d_destination dd1 ON df.departure_destination_code = dd1.destination_code
	JOIN d_destination dd2 ON df.arrival_destination_code = dd2.destination_code
	`

	GetScheduleByID = `
	SELECT schedule_id, departure_date, actual_departure_time,
	       actual_arrival_time, flight_id, pilot_id, status
	FROM f_schedule
	WHERE schedule_id = ?
	`

	UpdateScheduleDepartureTime = `
	UPDATE f_schedule SET actual_departure_time = ? WHERE schedule_id = ?
	`

	UpdateScheduleArrivalTime = `
	UPDATE f_schedule SET actual_arrival_time = ? WHERE schedule_id = ?
	`

	UpdateScheduleStatus = `
	UPDATE f_schedule SET status = ? WHERE schedule_id = ?
	`

	// ResolveFlightIdentity narrows a non-unique flight number down to a
	// single route via both endpoint cities.
	ResolveFlightIdentity = `
	SELECT df.flight_id
	FROM d_flight df
	JOIN d_destination dd1 ON df.departure_destination_code = dd1.destination_code
	JOIN d_destination dd2 ON df.arrival_destination_code = dd2.destination_code
	WHERE df.flight_number = ?
	  AND dd1.city = ?
	  AND dd2.city = ?
	`

	AssignPilotToSchedule = `
	UPDATE f_schedule
	SET pilot_id = ?
	WHERE flight_id = ? AND departure_date = ?
	`

	CountUnassignedSchedules = `
	SELECT COUNT(schedule_id)
	FROM f_schedule
	WHERE pilot_id IS NULL
	`

	FlightsPerPilot = `
	SELECT fs.pilot_id, dp.first_name, dp.last_name, COUNT(fs.schedule_id) AS flight_count
	FROM f_schedule fs
	LEFT JOIN d_pilot dp ON fs.pilot_id = dp.pilot_id
	WHERE fs.pilot_id IS NOT NULL
	GROUP BY fs.pilot_id, dp.first_name, dp.last_name
	`

	FlightsPerDestination = `
	SELECT dd2.airport_name, dd2.city, dd2.country, COUNT(fs.schedule_id) AS flight_count
	FROM f_schedule fs
	LEFT JOIN d_flight df ON fs.flight_id = df.flight_id
	LEFT JOIN d_destination dd2 ON df.arrival_destination_code = dd2.destination_code
	WHERE fs.status = ?
	GROUP BY dd2.airport_name, dd2.city, dd2.country
	ORDER BY dd2.airport_name DESC
	`
)
