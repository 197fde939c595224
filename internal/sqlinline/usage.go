package sqlinline

const QInsertUsageEvent = `--sql d1818896-37ff-469d-a822-7f6822611a4a
insert into usage_events (id, account_id, request_id, endpoint, success, input_tokens, output_tokens, image_count, estimated_cost, latency_ms, properties, created_at)
values (gen_random_uuid(), nullif($1::text, ''), $2::text, $3::text, $4::boolean, $5::int, $6::int, $7::int, $8::numeric, $9::int, coalesce($10::jsonb, '{}'::jsonb), $11::timestamptz);
`

const QUsageSummary = `--sql 0a2b1725-0df2-4bdd-acfe-0ef5f72fb95d
select endpoint,
       count(*)::int as requests,
       coalesce(sum(image_count), 0)::int as images,
       coalesce(sum(input_tokens), 0)::bigint as input_tokens,
       coalesce(sum(output_tokens), 0)::bigint as output_tokens,
       coalesce(sum(estimated_cost), 0)::float8 as cost
from usage_events
where created_at >= $1::timestamptz
group by endpoint
order by cost desc, endpoint;
`
