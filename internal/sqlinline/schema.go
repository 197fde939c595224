package sqlinline

const QEnsureSchema = `--sql e957a21b-43ca-4850-8bd7-556eb63bc7ba
create extension if not exists pgcrypto;

create table if not exists accounts (
    id                  text primary key,
    email               text not null default '',
    credits             integer not null default 0 check (credits >= 0),
    free_credits_used   integer not null default 0,
    last_free_credit_at timestamptz,
    created_at          timestamptz not null default now(),
    updated_at          timestamptz not null default now()
);

create table if not exists credit_transactions (
    id         uuid primary key,
    account_id text not null references accounts(id) on delete cascade,
    delta      integer not null,
    reason     text not null,
    reference  text not null default '',
    created_at timestamptz not null default now()
);
create index if not exists credit_transactions_account_idx on credit_transactions(account_id, created_at desc);

create table if not exists usage_events (
    id             uuid primary key default gen_random_uuid(),
    account_id     text,
    request_id     text not null default '',
    endpoint       text not null,
    success        boolean not null,
    input_tokens   integer not null default 0,
    output_tokens  integer not null default 0,
    image_count    integer not null default 0,
    estimated_cost numeric(12, 6) not null default 0,
    latency_ms     integer not null default 0,
    properties     jsonb not null default '{}'::jsonb,
    created_at     timestamptz not null default now()
);
create index if not exists usage_events_endpoint_idx on usage_events(endpoint, created_at desc);
`
